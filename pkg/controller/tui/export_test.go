package tui

var DisplayValue = displayValue
