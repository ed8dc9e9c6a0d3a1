package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("invalid parameters")
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameExist     = errors.New("username already taken")
	ErrEmailExist        = errors.New("email already registered")
	ErrPasswordIncorrect = errors.New("incorrect username or password")

	ErrPhotoNotFound   = errors.New("photo not found")
	ErrCommentNotFound = errors.New("comment not found")

	ErrReactionNotFound     = errors.New("reaction not found")
	ErrReactionNameExist    = errors.New("reaction already exists")
	ErrRatingExists         = errors.New("rating already exists")
	ErrRatingNotFound       = errors.New("rating not found")
	ErrRatingOutOfRange     = errors.New("rating must be between 1 and 5")
	ErrSubscriptionExists   = errors.New("already subscribed")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrSubscribeSelf        = errors.New("cannot subscribe to yourself")

	UnauthorizedError = errors.New("permission denied")
	UnExpectedError   = errors.New("unexpected error, try again later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUsernameExist:     Conflict,
	ErrEmailExist:        Conflict,
	ErrPasswordIncorrect: Unauthorized,

	ErrPhotoNotFound:   NotFound,
	ErrCommentNotFound: NotFound,

	ErrReactionNotFound:     NotFound,
	ErrReactionNameExist:    Conflict,
	ErrRatingExists:         Conflict,
	ErrRatingNotFound:       NotFound,
	ErrRatingOutOfRange:     BadRequest,
	ErrSubscriptionExists:   Conflict,
	ErrSubscriptionNotFound: NotFound,
	ErrSubscribeSelf:        BadRequest,

	UnauthorizedError: Unauthorized,
	UnExpectedError:   InternalServerError,
}
