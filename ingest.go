package inkwell

import (
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/inkwell/views"
)

// uploadResponse is the JSON body for the ingestion endpoint.
type uploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Slug     string `json:"slug,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// handleUpload accepts a multipart submission with title, description,
// content, and an image, stores the asset, and upserts the record store.
// Validation failures return 400 without touching storage; write failures
// return 500 (an already-written image is left orphaned, by the store's
// no-cleanup contract).
func (a *App) handleUpload(c echo.Context) error {
	if !a.submitLimiter.Allow(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, uploadResponse{
			Message: "Too many submissions. Try again later.",
		})
	}

	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))
	content := c.FormValue("content")
	file, fileErr := c.FormFile("image")

	if title == "" || description == "" || strings.TrimSpace(content) == "" || fileErr != nil {
		return c.JSON(http.StatusBadRequest, uploadResponse{
			Message: "Please fill in all fields and select an image.",
		})
	}
	if file.Size > maxUploadSize {
		return c.JSON(http.StatusBadRequest, uploadResponse{
			Message: "Image too large (max 10MB).",
		})
	}
	if Slugify(title) == "" {
		return c.JSON(http.StatusBadRequest, uploadResponse{
			Message: "Title must contain at least one letter or number.",
		})
	}

	record, err := a.ingest(title, description, content, c.FormValue("author"), file)
	if err != nil {
		c.Logger().Errorf("upload failed: %v", err)
		return c.JSON(http.StatusInternalServerError, uploadResponse{
			Message: "Failed to create blog post.",
		})
	}

	return c.JSON(http.StatusCreated, uploadResponse{
		Success:  true,
		Message:  "Blog post uploaded and data saved successfully.",
		Slug:     record.Slug,
		ImageURL: record.Image,
	})
}

// handleSubmitForm serves the submission page, surfacing any flash notice
// from a previous post.
func (a *App) handleSubmitForm(c echo.Context) error {
	notice := takeFlash(c)
	return Render(c, views.SubmitForm(a.site(), notice, CsrfToken(c)))
}

// handleSubmit is the HTML form counterpart of handleUpload: same
// validation and storage path, but it answers with a redirect and a flash
// notice instead of JSON.
func (a *App) handleSubmit(c echo.Context) error {
	if !a.submitLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many submissions. Try again later.")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))
	content := c.FormValue("content")
	file, fileErr := c.FormFile("image")

	if title == "" || description == "" || strings.TrimSpace(content) == "" || fileErr != nil {
		return Render(c, views.SubmitForm(a.site(), "Please fill in all fields and select an image.", CsrfToken(c)))
	}
	if file.Size > maxUploadSize {
		return Render(c, views.SubmitForm(a.site(), "Image too large (max 10MB).", CsrfToken(c)))
	}
	if Slugify(title) == "" {
		return Render(c, views.SubmitForm(a.site(), "Title must contain at least one letter or number.", CsrfToken(c)))
	}

	record, err := a.ingest(title, description, content, c.FormValue("author"), file)
	if err != nil {
		return err
	}
	if err := setFlash(c, "Published \""+record.Title+"\"."); err != nil {
		c.Logger().Warnf("set flash: %v", err)
	}
	return c.Redirect(http.StatusSeeOther, "/blog/"+record.Slug+"/")
}

// ingest stores the image asset, builds the record with today's date and
// the configured default author, and upserts it into the record store.
func (a *App) ingest(title, description, content, author string, file *multipart.FileHeader) (PostRecord, error) {
	asset, err := a.saveAsset(file)
	if err != nil {
		return PostRecord{}, err
	}

	if strings.TrimSpace(author) == "" {
		author = a.Config.Author
	}
	record := PostRecord{
		Title:       title,
		Description: description,
		Slug:        Slugify(title),
		Date:        time.Now().Format("2006-01-02"),
		Author:      author,
		Image:       asset.URL,
		Content:     content,
		Uploaded:    true,
	}
	if err := a.Store.Upsert(record); err != nil {
		return PostRecord{}, err
	}
	a.Cache.Invalidate()
	return record, nil
}
