package tradelog

import "fmt"

// test helpers to build trades tersely.

var testID int

// closedTrade returns a closed trade with a fresh id.
func closedTrade(symbol string, position Position, open, close string, result string) Trade {
	testID++
	return Trade{
		ID:        fmt.Sprintf("t%d", testID),
		Position:  position,
		Symbol:    symbol,
		OpenDate:  MustParseDate(open),
		OpenTime:  "09:30",
		CloseDate: MustParseDate(close),
		Deposit:   "0",
		Result:    result,
	}
}

// openTrade returns an open trade with a fresh id.
func openTrade(symbol string, position Position, open string) Trade {
	testID++
	return Trade{
		ID:       fmt.Sprintf("t%d", testID),
		Position: position,
		Symbol:   symbol,
		OpenDate: MustParseDate(open),
		OpenTime: "09:30",
		Deposit:  "0",
	}
}
