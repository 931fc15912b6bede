package internal

// Version is the release version of kotoba.
const Version = "0.1.0"
