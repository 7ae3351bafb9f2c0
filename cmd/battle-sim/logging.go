package main

import "os"

// rollingFileWriter appends to a single log file, shunting it aside once
// it grows past maxSize so old runs don't pile up forever.
type rollingFileWriter struct {
	path    string
	maxSize int64
}

func (w rollingFileWriter) Write(b []byte) (int, error) {
	if err := w.rotate(); err != nil {
		return 0, err
	}

	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return file.Write(b)
}

func (w rollingFileWriter) rotate() error {
	stats, err := os.Stat(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	if stats.Size() < w.maxSize {
		return nil
	}

	return os.Rename(w.path, w.path+".old")
}
