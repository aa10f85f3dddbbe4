/*
Package gconf implements a configuration store intended to be used as a
per-package, in-database configuration.

Each extension declares its own configuration type and stores a single
instance of it under the "_c:<package>" key. The configuration is
initialized from the "conf" section of the genesis file and loaded by the
controllers whenever they need it. A missing configuration is reported as
ErrNotFound so that callers can fall back to defaults.
*/
package gconf
