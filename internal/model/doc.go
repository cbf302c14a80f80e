// Package model defines the domain data structures shared across the app: the
// download session state enum and the progress snapshot relayed from the
// fetch worker to the UI. Values are passed by copy and carry no behavior
// beyond formatting helpers.
package model
