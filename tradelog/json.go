package tradelog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/mtf"
)

// parseJSON reads a JSON array of trades, or a stream of JSON trade objects
// such as one object per line.
func parseJSON(input string) ([]mtf.RawTrade, error) {
	if strings.HasPrefix(input, "[") {
		var trades []mtf.RawTrade
		if err := json.Unmarshal([]byte(input), &trades); err != nil {
			return nil, err
		}
		return trades, nil
	}

	var trades []mtf.RawTrade
	dec := json.NewDecoder(strings.NewReader(input))
	for {
		var t mtf.RawTrade
		err := dec.Decode(&t)
		if errors.Is(err, io.EOF) {
			return trades, nil
		}
		if err != nil {
			return nil, fmt.Errorf("trade #%d: %w", len(trades)+1, err)
		}
		trades = append(trades, t)
	}
}
