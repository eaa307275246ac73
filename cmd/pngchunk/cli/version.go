package cli

// Version is set at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"
