package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/amsilf/hsk-bot/internal/domain/entities"
)

var (
	ErrInvalidLevel    = errors.New("invalid hsk level")
	ErrSourceNotFound  = errors.New("vocabulary source not found")
	ErrMissingColumns  = errors.New("vocabulary source missing required columns")
	ErrEmptyVocabulary = errors.New("vocabulary source has no usable rows")
)

// Required column names, matched case-insensitively against the header.
const (
	columnChinese      = "chinese"
	columnPinyin       = "pinyin"
	columnEnglish      = "english"
	columnPartOfSpeech = "part_of_speech"
)

// VocabularyRepository loads HSK word lists from pipe-delimited files,
// one file per level (hsk-1.csv .. hsk-6.csv). Loaded levels are cached
// and shared read-only across sessions.
type VocabularyRepository struct {
	path   string
	logger *zap.Logger

	mu     sync.Mutex
	levels map[int]*levelEntry
}

// levelEntry caches one level's load result. The sync.Once guarantees
// at most one effective file read per level under concurrent access.
type levelEntry struct {
	once  sync.Once
	words []entities.Word
	err   error
}

// NewVocabularyRepository creates a repository reading from the given directory.
func NewVocabularyRepository(path string, logger *zap.Logger) *VocabularyRepository {
	return &VocabularyRepository{
		path:   path,
		logger: logger,
		levels: make(map[int]*levelEntry),
	}
}

// Load returns the word list for the given HSK level.
// It fails with ErrInvalidLevel outside the 1-6 range, ErrSourceNotFound
// when no file backs the level, ErrMissingColumns when the header lacks
// required fields and ErrEmptyVocabulary when no row survives parsing.
func (r *VocabularyRepository) Load(level int) ([]entities.Word, error) {
	if level < entities.MinHSKLevel || level > entities.MaxHSKLevel {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	r.mu.Lock()
	entry, ok := r.levels[level]
	if !ok {
		entry = &levelEntry{}
		r.levels[level] = entry
	}
	r.mu.Unlock()

	entry.once.Do(func() {
		entry.words, entry.err = r.loadLevel(level)
	})

	if entry.err != nil {
		// Do not cache failures: the file may appear or be fixed later.
		r.mu.Lock()
		if r.levels[level] == entry {
			delete(r.levels, level)
		}
		r.mu.Unlock()
		return nil, entry.err
	}

	return entry.words, nil
}

func (r *VocabularyRepository) loadLevel(level int) ([]entities.Word, error) {
	name := filepath.Join(r.path, fmt.Sprintf("hsk-%d.csv", level))

	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, name)
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = '|'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s has no header row", ErrMissingColumns, name)
	}

	cols := columnIndexes(header)
	chinese, okChinese := cols[columnChinese]
	pinyin, okPinyin := cols[columnPinyin]
	english, okEnglish := cols[columnEnglish]
	if !okChinese || !okPinyin || !okEnglish {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, name)
	}
	pos, hasPOS := cols[columnPartOfSpeech]

	required := max(chinese, pinyin, english)

	var words []entities.Word
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			r.logger.Warn("skipping unparsable vocabulary row",
				zap.String("file", name),
				zap.Int("line", line),
				zap.Error(err),
			)
			continue
		}

		if len(record) <= required {
			r.logger.Warn("skipping short vocabulary row",
				zap.String("file", name),
				zap.Int("line", line),
				zap.Int("fields", len(record)),
			)
			continue
		}

		var tag entities.PartOfSpeech
		if hasPOS && pos < len(record) {
			tag = entities.PartOfSpeech(strings.ToLower(strings.TrimSpace(record[pos])))
		}

		word, err := entities.NewWord(record[chinese], record[pinyin], record[english], tag, level)
		if err != nil {
			r.logger.Warn("skipping invalid vocabulary row",
				zap.String("file", name),
				zap.Int("line", line),
				zap.Error(err),
			)
			continue
		}

		words = append(words, word)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyVocabulary, name)
	}

	return words, nil
}

// columnIndexes maps lowercased, trimmed header names to their positions.
func columnIndexes(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}
