// Package manifest serializes the pack manifest: the index that maps every
// packed asset identifier to its tempo, index, label and status.
//
// The encoding is UTF-8 JSON stored as the container entry named [FileName]:
//
//	{"entries":[{"id":"…","groupKey":120,"index":1,"label":"A","status":0}]}
//
// [Decode] is the exact left inverse of [Encode].
package manifest
