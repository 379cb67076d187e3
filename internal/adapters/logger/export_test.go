package logger

// Exported for white-box testing of the error chain formatting.
var (
	CollectErrorEntries = func(err error) ([]string, []map[string]any) {
		entries := collectErrorEntries(err)
		msgs := make([]string, len(entries))
		metas := make([]map[string]any, len(entries))
		for i, e := range entries {
			msgs[i] = e.message
			metas[i] = e.metadata
		}
		return msgs, metas
	}
)
