package app

// HashHeader carries the hex HMAC-SHA256 of a signed JSON request body.
const HashHeader = "HashSHA256"
