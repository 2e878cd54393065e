// Package models defines the scheduling tables read by the availability
// feature as GORM models, and the report returned to callers.
//
// Column names follow the existing MySQL schema (e.g. 'POC_ID', 'Schedule_Date').
// The integrity feature reflects over these models to verify a live schema.
package models
