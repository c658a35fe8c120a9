package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"mazecache/internal/catalog"
	"mazecache/internal/textutil"
)

const (
	detailLabelWidth = 14
	detailIndent     = "  "
)

func detailLine(out io.Writer, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(out, "%s%-*s %s\n", detailIndent, detailLabelWidth, label+":", value)
}

func renderSeriesDetail(out io.Writer, series *catalog.Series) {
	fmt.Fprintf(out, "%s (TVMaze #%d)\n\n", series.Name, series.TVMazeID)
	detailLine(out, "Status", series.Status)
	detailLine(out, "Type", series.ShowType)
	detailLine(out, "Language", series.Language)
	detailLine(out, "Network", series.Network)
	detailLine(out, "Web channel", series.WebChannel)
	if series.Premiered != nil {
		detailLine(out, "Premiered", series.Premiered.Format("2006-01-02"))
	}
	if series.Runtime > 0 {
		detailLine(out, "Runtime", fmt.Sprintf("%d min", series.Runtime))
	}
	if series.Rating > 0 {
		detailLine(out, "Rating", strconv.FormatFloat(series.Rating, 'f', 1, 64))
	}
	detailLine(out, "Genres", strings.Join(series.Genres, ", "))
	if series.TVDBID > 0 {
		detailLine(out, "TheTVDB", strconv.FormatInt(series.TVDBID, 10))
	}
	if series.TVRageID > 0 {
		detailLine(out, "TVRage", strconv.FormatInt(series.TVRageID, 10))
	}
	detailLine(out, "Refreshed", formatRelativeTime(series.LastRefreshed))
	detailLine(out, "URL", series.URL)
}

func renderEpisodeDetail(out io.Writer, seriesName string, episode *catalog.Episode) {
	header := fmt.Sprintf("S%02dE%02d", episode.Season, episode.Number)
	if seriesName != "" {
		header = seriesName + " " + header
	}
	if episode.Title != "" {
		header += fmt.Sprintf(" %q", episode.Title)
	}
	fmt.Fprintf(out, "%s (TVMaze episode #%d)\n\n", header, episode.TVMazeID)
	detailLine(out, "Airdate", formatAirDate(episode.AirDate))
	if episode.AirStamp != nil && !episode.AirStamp.IsZero() {
		detailLine(out, "Airstamp", episode.AirStamp.UTC().Format("2006-01-02 15:04 MST"))
	}
	if episode.Runtime > 0 {
		detailLine(out, "Runtime", fmt.Sprintf("%d min", episode.Runtime))
	}
	detailLine(out, "Refreshed", formatRelativeTime(episode.LastRefreshed))
	detailLine(out, "URL", episode.URL)
}

func renderEpisodeTable(out io.Writer, episodes []*catalog.Episode) {
	rows := make([][]string, 0, len(episodes))
	for _, episode := range episodes {
		rows = append(rows, []string{
			strconv.Itoa(episode.Season),
			strconv.Itoa(episode.Number),
			textutil.Truncate(episode.Title, 60),
			formatAirDate(episode.AirDate),
		})
	}
	writeTable(out,
		[]string{"Season", "Episode", "Title", "Airdate"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft},
	)
}

func renderCacheStats(out io.Writer, stats catalog.Stats) {
	location := stats.DatabasePath
	if stats.DatabaseBytes > 0 {
		location = fmt.Sprintf("%s (%s)", location, humanize.IBytes(uint64(stats.DatabaseBytes)))
	}
	fmt.Fprintf(out, "Cache database: %s\n\n", location)
	detailLine(out, "Series", strconv.Itoa(stats.Series))
	detailLine(out, "Episodes", strconv.Itoa(stats.Episodes))
	detailLine(out, "Genres", strconv.Itoa(stats.Genres))
	detailLine(out, "Aliases", strconv.Itoa(stats.Aliases))
	detailLine(out, "Stale series", strconv.Itoa(stats.StaleSeries))
}

func formatAirDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatRelativeTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return humanize.Time(*t)
}
