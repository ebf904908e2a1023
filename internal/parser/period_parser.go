package parser

import (
	"fmt"
	"strings"

	"github.com/balkashynov/tally/internal/models"
)

// ParsePeriod converts user input into a goal period.
// Accepts daily/day/d, weekly/week/w and monthly/month/m in any case.
func ParsePeriod(input string) (models.Period, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "daily", "day", "d":
		return models.PeriodDaily, nil
	case "weekly", "week", "w":
		return models.PeriodWeekly, nil
	case "monthly", "month", "m":
		return models.PeriodMonthly, nil
	}
	return "", fmt.Errorf("invalid period '%s'. Use: daily, weekly or monthly", input)
}
