// FILE: logviewer/src/internal/core/const.go
package core

// Reader and pagination defaults
const (
	DefaultMaxReadLines   = 1000
	DefaultMaxGrowthLines = 10000
	DefaultPageLength     = 25
	DefaultReadTimeoutMS  = 5000
)

// Entries above either threshold are previewed by their first line
const (
	LongEntryLines = 3
	LongEntryChars = 500
)

// Argon2id parameters
const (
	Argon2Time    = 3
	Argon2Memory  = 64 * 1024 // 64 MB
	Argon2Threads = 4
	Argon2SaltLen = 16
	Argon2KeyLen  = 32
)

const DefaultTokenLength = 32
