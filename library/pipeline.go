package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/indexed"
)

const scanWorkers = 10

type namedPalette struct {
	name    string
	palette *indexed.Palette
}

func (l *Library) findFiles(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !strings.EqualFold(filepath.Ext(file), Ext) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (l *Library) decodeWorker(ctx context.Context, in <-chan string) (<-chan namedPalette, <-chan error, error) {
	out := make(chan namedPalette)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for file := range in {
			p, err := decodeFile(file)
			if err != nil {
				errc <- err
				return
			}

			select {
			case out <- namedPalette{NameFromFile(file), p}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, errc, nil
}

func (l *Library) storeWorker(ctx context.Context, in <-chan namedPalette) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for np := range in {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if err := l.store(np.name, np.palette); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func mergePalettes(ctx context.Context, cs ...<-chan namedPalette) <-chan namedPalette {
	var wg sync.WaitGroup
	out := make(chan namedPalette)
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan namedPalette) {
			defer wg.Done()
			for n := range c {
				select {
				case out <- n:
				case <-ctx.Done():
					return
				}
			}
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// waitForPipeline returns the first error from any stage. The pipeline is
// cancelled on that error and every stage is waited on before returning.
func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	var first error
	for err := range mergeErrors(errs...) {
		if err != nil && first == nil {
			first = err
			cancel()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks the directory tree at path and imports every RIFF palette
// file found. Files are decoded concurrently but stored one at a time.
func (l *Library) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := l.findFiles(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	var decoded []<-chan namedPalette
	for i := 0; i < scanWorkers; i++ {
		out, errc, err := l.decodeWorker(ctx, files)
		if err != nil {
			return err
		}
		decoded = append(decoded, out)
		errcList = append(errcList, errc)
	}

	errc, err = l.storeWorker(ctx, mergePalettes(ctx, decoded...))
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	return waitForPipeline(cancelFunc, errcList...)
}
