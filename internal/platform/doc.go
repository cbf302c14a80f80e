// Package platform contains OS integration glue: filesystem helpers, opening
// folders in the system file manager, and locating the bundled ffmpeg used
// for container remux and audio extraction.
package platform
