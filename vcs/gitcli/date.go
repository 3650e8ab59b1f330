package gitcli

// LogDateFormat is the strftime format passed to git log --date=format:.
// It yields dates like 2024-01-31.
const LogDateFormat = "%Y-%m-%d"

// LogPrettyFormat renders each commit as id|date|summary.
const LogPrettyFormat = "%h|%ad|%s"
