package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rmitchellscott/reather/logging"
)

const (
	dataDir         = "data"
	addressFileName = "addresses.txt"
)

// seedAddresses populate an empty address file when the user asks for it.
var seedAddresses = []string{
	"233 E MAIN ST, BOZEMAN, MT, 59715",
	"1 MANELE RD, LANAI CITY, HI, 96763",
	"52 WHITEHEAD AVE, PORTLAND, ME, 04109",
	"22338 PACIFIC COAST HWY, MALIBU, CA, 90265",
	"58 OCEAN ST, ROCKLAND, ME, 04841",
	"100 SANKATY RD, NANTUCKET, MA, 02554",
	"1600 PENNSYLVANIA AVE NW, WASHINGTON, DC, 20500",
}

// StoredAddress is one geocoded address from the address file.
type StoredAddress struct {
	Address   string
	Latitude  float64
	Longitude float64
}

func (a StoredAddress) line() string {
	return fmt.Sprintf("%s;%s;%s", a.Address,
		strconv.FormatFloat(a.Latitude, 'f', -1, 64),
		strconv.FormatFloat(a.Longitude, 'f', -1, 64))
}

// AddressBook persists geocoded addresses as "address;lat;lon" lines.
type AddressBook struct {
	Path string
}

// resolveAddressFile picks the address file: the configured path, else
// data/addresses.txt when data/ exists, else a file next to the executable.
// The data directory is never created.
func resolveAddressFile(configured string) string {
	if configured != "" {
		return configured
	}
	if info, err := os.Stat(dataDir); err == nil && info.IsDir() {
		return filepath.Join(dataDir, addressFileName)
	}

	exeDir := "."
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}
	return filepath.Join(exeDir, addressFileName)
}

// IsEmpty reports whether the file is missing or has no content.
func (b AddressBook) IsEmpty() (bool, error) {
	info, err := os.Stat(b.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking address file %s: %w", b.Path, err)
	}
	return info.Size() == 0, nil
}

// Load reads every well-formed entry. A missing file is an empty book.
// Malformed lines are logged and skipped; blank lines are ignored.
func (b AddressBook) Load() ([]StoredAddress, error) {
	f, err := os.Open(b.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening address file %s: %w", b.Path, err)
	}
	defer f.Close()

	var addrs []StoredAddress
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, ";")
		if len(parts) != 3 {
			logging.Warn("Skipping malformed address line",
				"file", b.Path, "line", lineNum, "content", line)
			continue
		}
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if latErr != nil || lonErr != nil {
			logging.Warn("Skipping address with unparseable coordinates",
				"file", b.Path, "line", lineNum, "address", parts[0])
			continue
		}
		addrs = append(addrs, StoredAddress{Address: parts[0], Latitude: lat, Longitude: lon})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading address file %s: %w", b.Path, err)
	}
	return addrs, nil
}

// Append adds one entry, creating the file if needed.
func (b AddressBook) Append(a StoredAddress) error {
	f, err := os.OpenFile(b.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error opening address file %s: %w", b.Path, err)
	}
	if _, err := fmt.Fprintln(f, a.line()); err != nil {
		f.Close()
		return fmt.Errorf("error writing address file %s: %w", b.Path, err)
	}
	return f.Close()
}

// Reset truncates the file, creating it if needed.
func (b AddressBook) Reset() error {
	f, err := os.Create(b.Path)
	if err != nil {
		return fmt.Errorf("error creating address file %s: %w", b.Path, err)
	}
	return f.Close()
}
