//go:build unit

package api_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/handler/api"
	resdto "library-ledger/internal/handler/dto/response"
	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/usecase/commands"
	"library-ledger/internal/usecase/shared"
	"library-ledger/tests/common/builder"
	"library-ledger/tests/common/httptest"
	"library-ledger/tests/common/testutil"
	commandsmock "library-ledger/tests/mock/commands"
	queriesmock "library-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.BookHandler
}

func (s *BookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewBookHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/books", s.handler.List)
	s.router.POST("/books", s.handler.Create)
	s.router.GET("/books/available", s.handler.ListAvailable)
	s.router.POST("/books/import", s.handler.Import)
	s.router.GET("/books/qr/:code", s.handler.FindByQR)
	s.router.GET("/books/:id", s.handler.Get)
}

func (s *BookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookHandlerTestSuite))
}

type testCaseBook struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookHandlerTestSuite) TestCreate() {
	url := "/books"
	bb := builder.NewBookBuilder().WithID(3)
	reqBody := bb.BuildCreateRequestDTO()
	created, err := bb.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().AddBook(gomock.Any(), bb.Fields).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(3), body.ID)
		s.True(body.Available)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/books/3"})
	})

	s.Run("validation", func() {
		cases := []testCaseBook{
			{name: "missing title", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
			{name: "missing author", mutate: testutil.Field("author", nil), expectCode: http.StatusBadRequest},
			{name: "negative year", mutate: testutil.Field("year", -1), expectCode: http.StatusBadRequest},
			{name: "negative copies", mutate: testutil.Field("copies", -2), expectCode: http.StatusBadRequest},
			{name: "year zero is allowed", mutate: testutil.Field("year", 0), expectCode: http.StatusCreated},
			{name: "optional fields may be omitted", mutate: testutil.Field("publisher", nil), expectCode: http.StatusCreated},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().AddBook(gomock.Any(), gomock.Any()).Return(created, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: whitespace-only author rejected by the usecase", func() {
		s.mockCommands.EXPECT().AddBook(gomock.Any(), gomock.Any()).Return(nil, errs.Wrap(errs.ErrValidationFailed, "Author is required")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("author", "   ")), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

// ================================================================================
// TestGet / TestFindByQR
// ================================================================================

func (s *BookHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetBookByID(gomock.Any(), int64(1)).
			Return(builder.NewBookBuilder().BuildStored(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/1", nil, "")

		var body resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Venus", body.Title)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetBookByID(gomock.Any(), int64(9)).
			Return(nil, shared.ErrBookNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Book not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/nine", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *BookHandlerTestSuite) TestFindByQR() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().FindBookByQR(gomock.Any(), "book-venus").
			Return(builder.NewBookBuilder().BuildStored(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/qr/book-venus", nil, "")

		var body resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("BOOK-VENUS", body.QR)
	})

	s.Run("error: 404 when no book carries the code", func() {
		s.mockQueries.EXPECT().FindBookByQR(gomock.Any(), "NOPE").Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/qr/NOPE", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Book not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookHandlerTestSuite) TestList() {
	books := []*book.Book{
		builder.NewBookBuilder().BuildStored(),
		builder.NewBookBuilder().WithID(2).WithTitle("Taste and Smell").WithCategory("").AsUnavailable().BuildStored(),
	}

	s.Run("all books", func() {
		s.mockQueries.EXPECT().GetBooks(gomock.Any()).Return(books, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books", nil, "")

		var body []resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(book.DefaultCategory, body[1].Category)
		s.False(body[1].Available)
	})

	s.Run("available books", func() {
		s.mockQueries.EXPECT().GetAvailableBooks(gomock.Any()).Return(books[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/available", nil, "")

		var body []resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})
}

// ================================================================================
// TestImport
// ================================================================================

func (s *BookHandlerTestSuite) TestImport() {
	csvData := "title,author\nVenus,Sally MacEachern\n"
	result := &commands.ImportResult{
		Imported: []*book.Book{builder.NewBookBuilder().BuildStored()},
		Skipped:  1,
	}
	readsCSV := gomock.Cond(func(r io.Reader) bool {
		b, err := io.ReadAll(r)
		return err == nil && string(b) == csvData
	})

	s.Run("raw text/csv body", func() {
		s.mockCommands.EXPECT().ImportBooks(gomock.Any(), readsCSV).Return(result, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/books/import", "text/csv", strings.NewReader(csvData))

		var body resdto.ImportBooksResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(1, body.Imported)
		s.Equal(1, body.Skipped)
		s.Len(body.Books, 1)
	})

	s.Run("multipart upload", func() {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", "books.csv")
		s.Require().NoError(err)
		_, err = fw.Write([]byte(csvData))
		s.Require().NoError(err)
		s.Require().NoError(mw.Close())

		s.mockCommands.EXPECT().ImportBooks(gomock.Any(), readsCSV).Return(result, nil).Times(1)

		req := nethttptest.NewRequest(http.MethodPost, "/books/import", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: multipart without a file part", func() {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		s.Require().NoError(mw.WriteField("note", "no file"))
		s.Require().NoError(mw.Close())

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/books/import", mw.FormDataContentType(), &buf)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing file")
	})

	s.Run("error: bad header", func() {
		s.mockCommands.EXPECT().ImportBooks(gomock.Any(), gomock.Any()).Return(nil, commands.ErrImportHeader).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/books/import", "text/csv", strings.NewReader("name\nx\n"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}
