package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"text/tabwriter"

	"trailstats/trail"
)

// --- Structs ---

type trackResult struct {
	Index   int
	Path    string
	Name    string
	Summary trail.Summary
	Err     error
}

type manifestEntry struct {
	File             string  `json:"file"`
	Name             string  `json:"name"`
	Points           int     `json:"points"`
	DistanceMi       float64 `json:"distance_mi"`
	ElevationGainFt  float64 `json:"elevation_gain_ft"`
	EquivalentFlatMi float64 `json:"equivalent_flat_mi"`
	ClimbFactor      float64 `json:"climb_factor"`
	HasElevation     bool    `json:"has_elevation"`
}

// --- Batch Pipeline ---

func collectTrackPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read track directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && isTrackFile(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func summarizeFile(index int, path string) trackResult {
	res := trackResult{Index: index, Path: path, Name: fileStem(path)}
	tf, err := loadTrack(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Name = tf.Name
	res.Summary = trail.Summarize(tf.Track)
	return res
}

// summarizeTracks loads and summarizes paths on a pool of workers. Results
// come back in the order of paths.
func summarizeTracks(paths []string, workers int, showProgress bool) []trackResult {
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	tasks := make(chan int, workers*2)
	results := make(chan trackResult, workers*2)

	go func() {
		for i := range paths {
			tasks <- i
		}
		close(tasks)
	}()

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				results <- summarizeFile(idx, paths[idx])
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	bar := newProgressBar(len(paths), "Summarizing", showProgress)
	ordered := make([]trackResult, len(paths))
	for res := range results {
		ordered[res.Index] = res
		bar.Add(1)
	}
	return ordered
}

func printSummaryTable(w io.Writer, results []trackResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TRACK\tPOINTS\tDISTANCE\tGAIN\tFLAT-EQUIV\tCLIMB")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\terror: %v\n", r.Name, r.Err)
			continue
		}
		s := r.Summary
		gain := "-"
		if s.HasElevation {
			gain = fmt.Sprintf("%.0f ft", float64(s.ElevationGain))
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f mi\t%s\t%.2f mi\t%.0f%%\n",
			r.Name, s.Points, float64(s.Distance), gain, float64(s.EquivalentFlat), s.ClimbFactor*100)
	}
	return tw.Flush()
}

// writeManifest stores the successful summaries as a JSON array.
func writeManifest(path string, results []trackResult) error {
	entries := make([]manifestEntry, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		entries = append(entries, manifestEntry{
			File:             filepath.Base(r.Path),
			Name:             r.Name,
			Points:           r.Summary.Points,
			DistanceMi:       float64(r.Summary.Distance),
			ElevationGainFt:  float64(r.Summary.ElevationGain),
			EquivalentFlatMi: float64(r.Summary.EquivalentFlat),
			ClimbFactor:      r.Summary.ClimbFactor,
			HasElevation:     r.Summary.HasElevation,
		})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
