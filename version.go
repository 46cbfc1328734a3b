package main

// Version is printed by the -version flag.
const Version = "v1.0.0"
