package inkwell

// PostRecord is the uniform in-memory representation of a blog post,
// regardless of whether it came from the record store or the static content
// directory. JSON tags match the on-disk layout of data/blogs.json.
type PostRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Date        string `json:"date"`
	Author      string `json:"author,omitempty"`
	Image       string `json:"image,omitempty"`
	Content     string `json:"content"`
	Uploaded    bool   `json:"isUploaded"`
}
