package models

import (
	"gorm.io/datatypes"
)

// Slot is a concrete, date-specific bookable window ('poc_available_slots').
// Booked counts the appointments already taken in the window.
type Slot struct {
	ID           int64          `gorm:"column:Slot_ID;primaryKey"`
	PocID        int64          `gorm:"column:POC_ID;type:int;index"`
	ScheduleDate datatypes.Date `gorm:"column:Schedule_Date;type:date"`
	StartTime    datatypes.Time `gorm:"column:Start_Time;type:time"`
	EndTime      datatypes.Time `gorm:"column:End_Time;type:time"`
	Booked       int            `gorm:"column:appointments_per_slot;type:int"`
}

// TableName overrides the table name for Slot.
func (Slot) TableName() string {
	return "poc_available_slots"
}

// ScheduleRule is a recurring weekly capacity template ('poc_schedules').
// DayOfWeek holds a weekday name (Sunday..Saturday) or its number 0..6.
type ScheduleRule struct {
	ID        int64          `gorm:"column:Schedule_ID;primaryKey"`
	PocID     int64          `gorm:"column:POC_ID;type:int;index"`
	DayOfWeek string         `gorm:"column:Day_of_Week;type:varchar(10)"`
	StartTime datatypes.Time `gorm:"column:Start_Time;type:time"`
	EndTime   datatypes.Time `gorm:"column:End_Time;type:time"`
	Capacity  int            `gorm:"column:appointments_per_slot;type:int"`
}

// TableName overrides the table name for ScheduleRule.
func (ScheduleRule) TableName() string {
	return "poc_schedules"
}

// Provider is a point of contact, e.g. a doctor ('poc').
type Provider struct {
	ID             int64  `gorm:"column:POC_ID;primaryKey"`
	Name           string `gorm:"column:POC_Name;type:varchar(100)"`
	Specialization string `gorm:"column:Specialization;type:varchar(100)"`
	ClientID       int64  `gorm:"column:Client_ID;type:int;index"`
}

// TableName overrides the table name for Provider.
func (Provider) TableName() string {
	return "poc"
}

// Client is the tenant owning providers ('client').
type Client struct {
	ID   int64  `gorm:"column:Client_ID;primaryKey"`
	Name string `gorm:"column:Client_Name;type:varchar(100)"`
}

// TableName overrides the table name for Client.
func (Client) TableName() string {
	return "client"
}

// All lists the models read by the availability feature, in schema order.
func All() []any {
	return []any{Client{}, Provider{}, ScheduleRule{}, Slot{}}
}
