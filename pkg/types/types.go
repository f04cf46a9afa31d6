package types

import "github.com/google/uuid"

type UserId uuid.UUID

func (u UserId) String() string {
	return uuid.UUID(u).String()
}

func (u UserId) IsNil() bool {
	return u == UserId(uuid.Nil)
}

// DataType is the application-level type of a collection field. The column
// itself is free text; this layer enforces the set.
type DataType string

const (
	DataTypeText         DataType = "text"
	DataTypeNumber       DataType = "number"
	DataTypeBoolean      DataType = "boolean"
	DataTypeDate         DataType = "date"
	DataTypeSingleSelect DataType = "single_select"
	DataTypeMultiSelect  DataType = "multi_select"
)

var validDataTypes = []DataType{
	DataTypeText,
	DataTypeNumber,
	DataTypeBoolean,
	DataTypeDate,
	DataTypeSingleSelect,
	DataTypeMultiSelect,
}

func IsValidDataType(s string) bool {
	for _, dt := range validDataTypes {
		if s == string(dt) {
			return true
		}
	}
	return false
}

// IsSelectDataType reports whether the data type carries an options list.
func IsSelectDataType(s string) bool {
	return s == string(DataTypeSingleSelect) || s == string(DataTypeMultiSelect)
}

const DefaultCollectionType = "custom"

type Nullable interface {
	IsNil() bool
}
