// Package database provides the GORM connection used by the catalog.
//
// The production driver is MySQL. A sqlite driver is available for local
// development and for tests, which typically connect with
//
//	database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
//
// Schema creation is owned by the catalog models package (AutoMigrate); this
// package only hands out connections.
package database
