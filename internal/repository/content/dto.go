package content

import (
	"strconv"

	domcontent "github.com/kollektivet/sitesearch/internal/domain/content"
)

func jobFromFields(id string, f map[string]string) domcontent.Job {
	return domcontent.Job{
		ID:        id,
		Slug:      f["slug"],
		Status:    f["status"],
		Metadata:  f["metadata"],
		CreatedAt: parseMillis(f["created_at"]),
		UpdatedAt: parseMillis(f["updated_at"]),
	}
}

func eventFromFields(id string, f map[string]string) domcontent.Event {
	return domcontent.Event{
		ID:        id,
		Status:    f["status"],
		StartDate: f["start_date"],
		Metadata:  f["metadata"],
		CreatedAt: parseMillis(f["created_at"]),
		UpdatedAt: parseMillis(f["updated_at"]),
	}
}

func newsFromFields(id string, f map[string]string) domcontent.News {
	return domcontent.News{
		ID:        id,
		Status:    f["status"],
		CreatedAt: parseMillis(f["created_at"]),
		UpdatedAt: parseMillis(f["updated_at"]),
	}
}

func parseMillis(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
