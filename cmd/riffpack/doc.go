// Command riffpack bundles rendered riffs into a password-protected pack and
// reads such packs back.
//
// Usage:
//
//	riffpack <projects-dir> <password>            pack every riff under projects-dir
//	riffpack unpack <pack> <password> <out-dir>   restore the riffs into out-dir
//	riffpack decrypt <pack> <password> <out.zip>  write the plaintext container
//	riffpack list <pack> <password>               print the manifest
//	riffpack version                              print build information
//
// Configuration is read from flags, RIFFPACK_* environment variables and an
// optional .json/.jsonc/.toml file, in that order of precedence.
package main
