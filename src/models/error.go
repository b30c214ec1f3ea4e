package models

import "fmt"

var InvalidInputErr = fmt.Errorf("input parameter out of range")
var UnsupportedStrategyErr = fmt.Errorf("unsupported strategy")
var NoTradeFoundErr = fmt.Errorf("no trade found with positive expected result")
