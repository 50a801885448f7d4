package domain

import "time"

// TranslationRecord is a persisted Sinhala↔English translation pair.
// Records are append-only: once inserted they are never mutated, and a second
// record with the same (SourceText, Subdomain) pair is silently skipped.
type TranslationRecord struct {
	ID         int64     `json:"id" db:"id"`
	SourceText string    `json:"sinhala" db:"source_text"`
	Roman1     string    `json:"singlish1" db:"roman1"`
	Roman2     *string   `json:"singlish2,omitempty" db:"roman2"`
	Roman3     *string   `json:"singlish3,omitempty" db:"roman3"`
	English1   string    `json:"variant1" db:"english1"`
	English2   string    `json:"variant2" db:"english2"`
	English3   string    `json:"variant3" db:"english3"`
	Subdomain  Subdomain `json:"subdomain" db:"subdomain"`
	Kind       Kind      `json:"type" db:"kind"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// SubdomainStat is one row of the subdomain/kind cross-tabulation.
// Only observed combinations appear; zero counts are omitted.
type SubdomainStat struct {
	Subdomain Subdomain `json:"subdomain" db:"subdomain"`
	Kind      Kind      `json:"type" db:"kind"`
	Count     int       `json:"count" db:"count"`
}

// DatasetFilter narrows dataset listings. The zero value selects everything.
type DatasetFilter struct {
	Subdomain Subdomain // empty means no subdomain filter
	Limit     int       // 0 means no limit
}
