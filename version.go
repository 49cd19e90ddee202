package main

// _version is the version of src2html reported by -version.
var _version = "0.1.0-dev"
