package httperr

import (
	"net/http"

	"library-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the body of every failed request.
type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

type Body struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Rule turns a sentinel found in an error chain into a response.
type Rule struct {
	Target  error
	Status  int
	Code    string
	Message string
}

// Match returns the first rule whose target is in err's chain.
func Match(err error, rules []Rule) (Rule, bool) {
	for _, r := range rules {
		if errs.Is(err, r.Target) {
			return r, true
		}
	}
	return Rule{}, false
}

func Internal() Response {
	return Response{
		Status: http.StatusInternalServerError,
		Error:  Body{Code: "INTERNAL", Message: "Internal server error"},
	}
}

// AbortWithError keeps err on the gin context for the logging middleware and
// writes the public response.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, err, Response{Status: status, Error: Body{Message: msg}, Detail: detail})
}

func AbortWithRule(c *gin.Context, r Rule, err error, detail any) {
	abort(c, err, Response{Status: r.Status, Error: Body{Code: r.Code, Message: r.Message}, Detail: detail})
}

func abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr: abort without an error")
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
