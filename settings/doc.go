// Package settings holds the application configuration of the crosshair
// overlay and persists it in a key/value store.
//
// Config is a plain struct passed by value into the renderer through
// Config.Params; it knows nothing about widgets or windows. Persistence goes
// through the Store interface with keys namespaced under "crosshair/". The
// on-disk FileStore keeps them in a TOML file where the namespace becomes a
// table:
//
//	[crosshair]
//	color = "#ffffff"
//	length = 8
//	gap = 32
//
// Reading never fails on bad values: each key falls back to the value
// already in memory when it is missing or malformed.
package settings
