// Package file provides file-based configuration and prompt storage.
//
// Configuration lives in a TOML file under ~/.oklaw/, flattened to
// dot-notation keys. Prompts are user-editable text files under
// ~/.oklaw/prompts/, watched for changes so edits apply without a
// restart.
package file
