package entity

// PostType enumerates the kinds of content a post can carry. Values are stored
// as their string names in MongoDB, matching the wire representation.
type PostType string

const (
	PostTypeNone  PostType = "None"
	PostTypeText  PostType = "Text"
	PostTypeImage PostType = "Image"
	PostTypeGif   PostType = "Gif"
	PostTypeVideo PostType = "Video"
)

// ParsePostType converts the wire string into a PostType. Unknown values
// fall back to PostTypeNone rather than failing.
func ParsePostType(s string) PostType {
	switch PostType(s) {
	case PostTypeText, PostTypeImage, PostTypeGif, PostTypeVideo:
		return PostType(s)
	default:
		return PostTypeNone
	}
}

// CommentType mirrors PostType for comments.
type CommentType string

const (
	CommentTypeNone  CommentType = "None"
	CommentTypeImage CommentType = "Image"
	CommentTypeGif   CommentType = "Gif"
	CommentTypeVideo CommentType = "Video"
)

func ParseCommentType(s string) CommentType {
	switch CommentType(s) {
	case CommentTypeImage, CommentTypeGif, CommentTypeVideo:
		return CommentType(s)
	default:
		return CommentTypeNone
	}
}

// FavoriteType says whether a favorite points at a post or a directory.
// It is always assigned server side, never taken from the client.
type FavoriteType string

const (
	FavoriteTypePost      FavoriteType = "Post"
	FavoriteTypeDirectory FavoriteType = "Directory"
)
