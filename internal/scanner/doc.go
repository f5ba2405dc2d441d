// Package scanner discovers asset groups on disk.
//
// A source tree looks like
//
//	<root>/RiffCollection120BPM/Render/120~1~A~.mp3
//	<root>/RiffCollection120BPM/Render/120~2~B~1.mp3
//	<root>/RiffCollection95BPM/Render/95~1~intro~2.mp3
//
// Each group directory carries the tempo between a fixed prefix and suffix.
// Each asset file stem is "<tempo>~<index>~<label>~<status>", where an empty
// status means none. Items that do not follow the layout are reported and
// skipped; only a missing root aborts a scan.
package scanner
