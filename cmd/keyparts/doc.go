// keyparts splits HSM keys into XOR key parts and merges key parts back into
// keys, for split-knowledge / dual-control key entry.
//
// Usage:
// keyparts split [-p <parts>] [-t | --mode <mode>] [-k <kcv>] <key>...
// keyparts merge [-k <kcv>] <part>...
// keyparts kcv -k <kcv> [--full] <key>...
//
// Keys and parts are hexadecimal and may contain spaces. If the only argument
// is '-', they are read from stdin, one per line. With no arguments they are
// prompted for without echo when stdin is a terminal, and read from stdin
// otherwise.
//
// split merges its inputs (if there is more than one) and splits the result
// into <parts> parts, 2 by default, at most 65536. All parts are needed to
// rebuild the key. With -t (or --mode keypad) the parts are built from digits that are easy to type on a phone
// keypad; they are not random and are only meant for test keys.
//
// With -k each key is printed with its check value (KCV) and each part with
// its component check value (CCV), truncated to three bytes. Supported
// algorithms are 3des, 3des-cmac, aes and aes-cmac.
//
// Global flags:
//
//	--config string
//	  	config file (or KEYPARTS_CONFIG env, default ~/.keyparts.yaml)
//	--json
//	  	output results as JSON
//	-q, --quiet
//	  	log errors only
//	-v, --verbose
//	  	enable debug logging
//
// The settings parts, keypad, mode, kcv and group can also be set in the
// config file or as KEYPARTS_PARTS, KEYPARTS_KEYPAD, KEYPARTS_MODE,
// KEYPARTS_KCV and KEYPARTS_GROUP; flags take precedence.
//
// Example:
// Split a double length 3DES key into three parts:
//
// > keyparts split -p 3 -k 3des 0123456789ABCDEFFEDCBA9876543210
//
// Merge the parts back into the key:
//
// > keyparts merge -k 3des <part 1> <part 2> <part 3>
//
// The exit status is 0 on success, 2 for invalid input and 3 if a split fails
// its own consistency checks.
package main
