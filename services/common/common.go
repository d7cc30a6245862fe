package common

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"propSettler/repo"
	"strings"
	"time"
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

// ProviderGet fetches a public stat-provider URL. Non-200 responses come back as
// errors so adapters can fold them into their unavailable path.
func ProviderGet(ctx context.Context, requestUrl string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", requestUrl, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; PropSettler/1.0)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("provider returned status %d for %s", resp.StatusCode, requestUrl)
	}
	return resp, nil
}

// LogError records an unexpected failure both in the structured log and as an
// ErrorLog row so operators can review it next to needs_review predictions.
func LogError(logs repo.ErrorLogRepository, log *slog.Logger, source string, err error) {
	log.Error("unexpected error", "source", source, "error", err)
	if logs == nil {
		return
	}
	if logErr := logs.Log(source, err.Error()); logErr != nil {
		log.Error("failed to persist error log", "source", source, "error", logErr)
	}
}

var accentFold = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ä", "a", "ã", "a", "å", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "ö", "o", "õ", "o", "ø", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ý", "y", "ÿ", "y",
	"ñ", "n", "ç", "c", "š", "s", "ž", "z", "č", "c", "ř", "r", "ě", "e",
)

// NormalizeName folds a player name for comparison: lower case, accents folded,
// punctuation stripped, whitespace collapsed. "Leon Draisaitl" and
// "leon  draisaitl." normalize identically.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = accentFold.Replace(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteRune(' ')
		}
		// periods, apostrophes and hyphens are dropped
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// LastName returns the final token of a normalized name, the loosest match tier.
func LastName(name string) string {
	fields := strings.Fields(NormalizeName(name))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
