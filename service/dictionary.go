package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/asynccnu/be-toolkit/domain"
	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/repository"
)

type DictionaryService interface {
	// Define 查询成功才会记入历史
	Define(ctx context.Context, word string) ([]domain.DictionaryEntry, error)
	History(ctx context.Context) ([]string, error)
	ClearHistory(ctx context.Context) error
}

type dictionaryService struct {
	baseURL string
	client  *http.Client
	history repository.HistoryRepository
	l       logger.Logger
}

func NewDictionaryService(baseURL string, timeout time.Duration,
	history repository.HistoryRepository, l logger.Logger) DictionaryService {
	return &dictionaryService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		history: history,
		l:       l,
	}
}

func (s *dictionaryService) Define(ctx context.Context, word string) ([]domain.DictionaryEntry, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, errs.ErrorMissingParameter("word is required")
	}
	if !isLookupWord(word) {
		return nil, errs.ErrorInvalidParameter("Invalid word: %s", word)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.baseURL+"/api/v2/entries/en/"+url.PathEscape(word), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.l.Error("请求词典接口失败", logger.String("word", word), logger.Error(err))
		return nil, errs.ErrorUpstreamUnavailable("An error occurred while looking up the word")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.ErrorNotFound("Word not found!")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errs.ErrorUpstreamError(resp.StatusCode, "Failed to look up the word")
	}

	var entries []domain.DictionaryEntry
	if err = json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, errs.ErrorUpstreamError(http.StatusBadGateway, "Failed to look up the word")
	}
	if len(entries) == 0 {
		return nil, errs.ErrorNotFound("Word not found!")
	}

	if er := s.history.Record(ctx, word); er != nil {
		// 历史记录写失败不影响查词
		s.l.Warn("记录查词历史失败", logger.String("word", word), logger.Error(er))
	}
	return entries, nil
}

func (s *dictionaryService) History(ctx context.Context) ([]string, error) {
	return s.history.Recent(ctx)
}

func (s *dictionaryService) ClearHistory(ctx context.Context) error {
	return s.history.Clear(ctx)
}

const maxWordLen = 64

// isLookupWord 至少包含一个字母或数字且不含路径分隔符，"." ".." 进不了上游路径
func isLookupWord(word string) bool {
	if len(word) > maxWordLen || strings.ContainsAny(word, `/\`) {
		return false
	}
	return strings.IndexFunc(word, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}
