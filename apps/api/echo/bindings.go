package echoapi

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/logbook/core"
)

var (
	orderingParam = "ordering"
	confirmParam  = "confirm"
)

type Ordering struct {
	Orderings []core.Ordering
}

func (ord *Ordering) Bind(ctx echo.Context) {
	val := ctx.QueryParam(orderingParam)
	if val == "" {
		return
	}

	for _, field := range strings.Split(val, ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		if field == "" {
			continue
		}
		ord.Orderings = append(ord.Orderings, core.Ordering{Field: field, Ascending: !descending})
	}
}

// confirmed reports whether the client asked for the destructive action explicitly.
func confirmed(ctx echo.Context) bool {
	ok, err := strconv.ParseBool(ctx.QueryParam(confirmParam))
	return err == nil && ok
}

// indexParam parses a non-negative integer path parameter.
func indexParam(ctx echo.Context, name string) (int, error) {
	index, err := strconv.Atoi(ctx.Param(name))
	if err != nil || index < 0 {
		return 0, errHttpNotFound
	}
	return index, nil
}
