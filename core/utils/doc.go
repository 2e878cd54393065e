// Package utils provides small shared helpers: loose type conversion for
// values read from heterogeneous schemas, and calendar helpers that derive
// weekdays and ISO dates from stored calendar values without consulting the
// process time zone.
package utils
