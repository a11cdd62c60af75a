package frameblend

// Version is the current version of the frameblend module.
const Version = "0.1.0"
