package version

// Version is the semantic version of the docvault CLI and client library.
const Version = "0.1.0"
