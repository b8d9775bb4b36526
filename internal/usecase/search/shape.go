package search

import (
	"time"

	"github.com/kollektivet/sitesearch/internal/domain/content"
	"github.com/kollektivet/sitesearch/internal/domain/search/index"
	"github.com/kollektivet/sitesearch/internal/domain/search/result"
	"github.com/kollektivet/sitesearch/internal/domain/text"
	"github.com/kollektivet/sitesearch/internal/repository/translation"
)

// Snippet truncation limits.
const (
	descriptionLimit     = 200
	unitDescriptionLimit = 180
)

// buildJobResult shapes a job parent + translation pair.
func buildJobResult(job content.Job, hit translation.Hit) result.Result {
	title := hit.Title
	if title == "" {
		title = job.Slug
	}
	if title == "" {
		title = "Job"
	}

	href := "/jobs"
	if job.Slug != "" {
		href = "/jobs/" + job.Slug
	}

	r := result.Result{
		Index:       index.Jobs,
		ID:          job.ID,
		Title:       title,
		Name:        title,
		Href:        href,
		Description: snippet(hit.Description, descriptionLimit),
	}

	if meta := content.ParseMetadata(job.Metadata); meta != nil {
		r.Type = meta.Type
		r.Company = meta.Company
		r.Location = meta.Location
		r.Date = meta.Date
	}

	return r
}

// buildEventResult shapes an event parent + translation pair. The date
// prefers the metadata start_date over the parent's own start_date column.
func buildEventResult(event content.Event, hit translation.Hit) result.Result {
	title := hit.Title
	if title == "" {
		title = "Event"
	}

	r := result.Result{
		Index:       index.Events,
		ID:          event.ID,
		Title:       title,
		Name:        title,
		Href:        "/events/" + event.ID,
		Description: snippet(hit.Description, descriptionLimit),
		Date:        event.StartDate,
	}

	if meta := content.ParseMetadata(event.Metadata); meta != nil {
		if meta.StartDate != "" {
			r.Date = meta.StartDate
		}
		r.Location = meta.Location
		r.Type = meta.Type
	}

	return r
}

// buildNewsResult shapes a news parent + translation pair. The date is the
// parent's creation timestamp.
func buildNewsResult(news content.News, hit translation.Hit) result.Result {
	title := hit.Title
	if title == "" {
		title = "News"
	}

	r := result.Result{
		Index:       index.News,
		ID:          news.ID,
		Title:       title,
		Name:        title,
		Href:        "/news/" + news.ID,
		Description: snippet(hit.Description, descriptionLimit),
	}

	if news.CreatedAt != 0 {
		r.Date = time.UnixMilli(news.CreatedAt).UTC().Format(time.RFC3339)
	}

	return r
}

// buildUnitResult shapes a unit hit, with the campus name (possibly empty)
// as the location label.
func buildUnitResult(u content.Unit, campusName string) result.Result {
	title := u.Name
	if title == "" {
		title = "Unit"
	}

	href := "/units/" + u.ID
	if u.CampusID != "" {
		href += "?campus=" + u.CampusID
	}

	return result.Result{
		Index:       index.Units,
		ID:          u.ID,
		Title:       title,
		Name:        title,
		Href:        href,
		Description: snippet(u.Description, unitDescriptionLimit),
		Location:    campusName,
		Department:  u.Name,
	}
}

func snippet(s string, limit int) string {
	return text.Truncate(text.StripHTML(s), limit)
}
