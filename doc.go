// Package hjarta wires INI configuration into Uber Fx applications.
//
// NewApp sets up structured logging and the Fx container. WithConfigFile points the
// container at an INI file and ProvideSection turns one of its sections into an
// injectable, defaulted and validated struct:
//
//	app := hjarta.NewApp(
//	    hjarta.WithConfigFile("config.ini"),
//	    hjarta.WithModules(hjarta.ProvideSection[ServerConfig]("server")),
//	)
//
// The codec itself lives in the document, sectionpath, literal, sections and tree
// packages and can be used without Fx.
package hjarta
