package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePostType(t *testing.T) {
	assert.Equal(t, PostTypeText, ParsePostType("Text"))
	assert.Equal(t, PostTypeVideo, ParsePostType("Video"))

	// unknown and empty values degrade to None instead of erroring
	assert.Equal(t, PostTypeNone, ParsePostType(""))
	assert.Equal(t, PostTypeNone, ParsePostType("text"))
	assert.Equal(t, PostTypeNone, ParsePostType("Podcast"))
}

func TestParseCommentType(t *testing.T) {
	assert.Equal(t, CommentTypeImage, ParseCommentType("Image"))
	assert.Equal(t, CommentTypeNone, ParseCommentType("None"))
	assert.Equal(t, CommentTypeNone, ParseCommentType("junk"))
}
