package api

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	reqdto "library-ledger/internal/handler/dto/request"
	resdto "library-ledger/internal/handler/dto/response"
	"library-ledger/internal/handler/httperr"
	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/usecase/commands"
	"library-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const maxImportBytes = 4 << 20

type BookHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewBookHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *BookHandler {
	return &BookHandler{cmds: cmds, q: q}
}

// @Summary List books
// @Description List every catalog entry in catalog order
// @Tags books
// @Produce json
// @Success 200 {array} resdto.BookResponse
// @Failure 500 {object} httperr.Response
// @Router /books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.q.GetBooks(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooks(books))
}

// @Summary List available books
// @Description Sweep expired reservations and list books that can be reserved
// @Tags books
// @Produce json
// @Success 200 {array} resdto.BookResponse
// @Failure 500 {object} httperr.Response
// @Router /books/available [get]
func (h *BookHandler) ListAvailable(c *gin.Context) {
	books, err := h.q.GetAvailableBooks(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooks(books))
}

// @Summary Get book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} resdto.BookResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	b, err := h.q.GetBookByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBook(b))
}

// @Summary Find book by QR code
// @Description Case-insensitive lookup of a scanned code
// @Tags books
// @Produce json
// @Param code path string true "QR code"
// @Success 200 {object} resdto.BookResponse
// @Failure 404 {object} httperr.Response
// @Router /books/qr/{code} [get]
func (h *BookHandler) FindByQR(c *gin.Context) {
	code := c.Param("code")
	b, err := h.q.FindBookByQR(c.Request.Context(), code)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	if b == nil {
		httperr.AbortWithError(c, http.StatusNotFound, errs.Newf("no book with code %q", code), "Book not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBook(b))
}

// @Summary Add book
// @Tags books
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookRequest true "Book"
// @Success 201 {object} resdto.BookResponse
// @Failure 400 {object} httperr.Response
// @Router /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	b, err := h.cmds.AddBook(c.Request.Context(), req.ToFields())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/books/"+strconv.FormatInt(b.ID(), 10))
	c.JSON(http.StatusCreated, resdto.FromBook(b))
}

// @Summary Import books from CSV
// @Description Header row names title, author and optional publisher, year, category, copies, description, qr. Rows without title or author are skipped.
// @Tags books
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Param file formData file false "CSV file"
// @Success 201 {object} resdto.ImportBooksResponse
// @Failure 400 {object} httperr.Response
// @Router /books/import [post]
func (h *BookHandler) Import(c *gin.Context) {
	var body io.Reader
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing file", nil)
			return
		}
		f, err := fh.Open()
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable file", nil)
			return
		}
		defer f.Close()
		body = f
	} else {
		body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	}

	result, err := h.cmds.ImportBooks(c.Request.Context(), body)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromImportResult(result))
}
