package catalog

// ContentType classifies a content item.
type ContentType string

const (
	TypeVideo     ContentType = "video"
	TypeQuiz      ContentType = "quiz"
	TypeWorksheet ContentType = "worksheet"
	TypeGame      ContentType = "game"
	TypeText      ContentType = "text"
	TypeDiagram   ContentType = "diagram"
	TypeImage     ContentType = "image"
	TypeArticle   ContentType = "article"
	TypeAudio     ContentType = "audio"
)

// AllContentTypes returns every known content type in catalog order.
// This order is the final tie-break whenever types are walked "in
// catalog order" (preference expansion, variety selection).
func AllContentTypes() []ContentType {
	return []ContentType{
		TypeVideo,
		TypeQuiz,
		TypeWorksheet,
		TypeGame,
		TypeText,
		TypeDiagram,
		TypeImage,
		TypeArticle,
		TypeAudio,
	}
}

// DisplayName returns a human-readable label for the content type.
func (t ContentType) DisplayName() string {
	switch t {
	case TypeVideo:
		return "Video"
	case TypeQuiz:
		return "Quiz"
	case TypeWorksheet:
		return "Worksheet"
	case TypeGame:
		return "Game"
	case TypeText:
		return "Text"
	case TypeDiagram:
		return "Diagram"
	case TypeImage:
		return "Image"
	case TypeArticle:
		return "Article"
	case TypeAudio:
		return "Audio"
	default:
		return string(t)
	}
}

// Objective is a single learning objective node in the curriculum graph.
// Immutable once loaded; mutation happens only through Store.Extend.
type Objective struct {
	ID            string
	Description   string
	Subject       string
	YearGroup     int
	Difficulty    string
	Prerequisites []string
}

// Item is a concrete learning resource tagged to one or more objectives.
// ID is the single canonical identifier; there is no alternate key field.
type Item struct {
	ID         string
	Title      string
	Type       ContentType
	Difficulty string
	Objectives []string
}
