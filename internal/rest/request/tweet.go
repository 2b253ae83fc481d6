package request

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxTweetLength = 280

type CreateTweet struct {
	Content string `json:"content" binding:"required,tweetcontent"`
}

// TweetContent rejects blank-only bodies and bodies over the length
// limit. Registered on gin's binding engine under "tweetcontent".
var TweetContent validator.Func = func(fl validator.FieldLevel) bool {
	content, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(content) != "" && len(content) <= maxTweetLength
}
