package kernel

// Edge pairs a node with the cursor addressing it.
type Edge[T any] struct {
	Node   T      `json:"node"`
	Cursor string `json:"cursor"`
}

// PageInfo is the standard cursor-pagination page descriptor. Start and end
// cursors are nil for an empty page.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}

// Connection is a cursor-paginated result set. TotalCount always reflects the
// full matching set, not the page window.
type Connection[T any] struct {
	Edges      []Edge[T] `json:"edges"`
	PageInfo   PageInfo  `json:"pageInfo"`
	TotalCount int       `json:"totalCount"`
}

// BuildConnection assembles a connection from the rows the repository fetched
// for a window. Rows arrive in fetch order: descending for forward pages,
// ascending for backward pages (they are reversed here so edges always read
// newest-first). The probe row beyond PageSize only drives has-more flags.
func BuildConnection[T any](nodes []T, window CursorWindow, totalCount int, cursorOf func(T) Cursor) *Connection[T] {
	hasMore := len(nodes) > window.PageSize
	if hasMore {
		nodes = nodes[:window.PageSize]
	}

	if window.Backward {
		reverse(nodes)
	}

	edges := make([]Edge[T], 0, len(nodes))
	for _, n := range nodes {
		edges = append(edges, Edge[T]{Node: n, Cursor: cursorOf(n).Encode()})
	}

	info := PageInfo{}
	if window.Backward {
		info.HasPreviousPage = hasMore
		info.HasNextPage = window.Boundary != nil
	} else {
		info.HasNextPage = hasMore
		info.HasPreviousPage = window.Boundary != nil
	}
	if len(edges) > 0 {
		start := edges[0].Cursor
		end := edges[len(edges)-1].Cursor
		info.StartCursor = &start
		info.EndCursor = &end
	}

	return &Connection[T]{
		Edges:      edges,
		PageInfo:   info,
		TotalCount: totalCount,
	}
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
