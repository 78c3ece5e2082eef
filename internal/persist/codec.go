package persist

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"microcity/internal/sims/city"
)

const (
	snapshotMagic   = 0x4d435459 // "MCTY"
	snapshotVersion = 1
)

// encodeSnapshot serializes a city into the versioned binary snapshot
// layout and compresses it. The layout is fixed little-endian: header,
// cells, scalar block, then the history rings.
func encodeSnapshot(c *city.City) ([]byte, error) {
	var raw bytes.Buffer
	w := func(v any) {
		binary.Write(&raw, binary.LittleEndian, v)
	}

	size := c.Size()
	w(uint32(snapshotMagic))
	w(uint16(snapshotVersion))
	w(uint16(size.W))
	w(uint16(size.H))

	snap := c.Snapshot()
	w(snap.Cells)
	w(snap.RngState)
	w(uint32(snap.CityTime))
	w(uint32(snap.SimCycle))
	w(uint16(snap.PhaseCycle))
	w(int64(snap.TotalFunds))
	w(uint16(snap.CityTax))
	w(int32(snap.ResValve))
	w(int32(snap.ComValve))
	w(int32(snap.IndValve))
	w(uint64(snap.MapSerial))

	w(snap.ResHist)
	w(snap.ComHist)
	w(snap.IndHist)
	w(snap.CrimeHist)
	w(snap.PollutionHist)
	w(snap.MoneyHist)
	w(snap.MiscHist)

	var out bytes.Buffer
	zw := lz4.NewWriter(&out)
	if _, err := zw.Write(raw.Bytes()); err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}
	return out.Bytes(), nil
}

// decodeSnapshot decompresses and applies a snapshot onto a city.
func decodeSnapshot(blob []byte, c *city.City) error {
	zr := lz4.NewReader(bytes.NewReader(blob))
	var raw bytes.Buffer
	if _, err := io.Copy(&raw, zr); err != nil {
		return fmt.Errorf("decompress snapshot: %w", err)
	}
	rd := bytes.NewReader(raw.Bytes())
	r := func(v any) error {
		return binary.Read(rd, binary.LittleEndian, v)
	}

	var magic uint32
	var version, w16, h16 uint16
	if err := r(&magic); err != nil {
		return fmt.Errorf("read snapshot header: %w", err)
	}
	if magic != snapshotMagic {
		return fmt.Errorf("not a city snapshot (magic %#x)", magic)
	}
	if err := r(&version); err != nil {
		return err
	}
	if version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", version)
	}
	if err := r(&w16); err != nil {
		return err
	}
	if err := r(&h16); err != nil {
		return err
	}
	size := c.Size()
	if int(w16) != size.W || int(h16) != size.H {
		return fmt.Errorf("snapshot is %dx%d, world is %dx%d", w16, h16, size.W, size.H)
	}

	var snap city.Snapshot
	snap.Cells = make([]uint16, size.W*size.H)
	if err := r(snap.Cells); err != nil {
		return err
	}
	var cityTime, simCycle uint32
	var phase, tax uint16
	var funds int64
	var resV, comV, indV int32
	var serial uint64
	if err := r(&snap.RngState); err != nil {
		return err
	}
	if err := r(&cityTime); err != nil {
		return err
	}
	if err := r(&simCycle); err != nil {
		return err
	}
	if err := r(&phase); err != nil {
		return err
	}
	if err := r(&funds); err != nil {
		return err
	}
	if err := r(&tax); err != nil {
		return err
	}
	if err := r(&resV); err != nil {
		return err
	}
	if err := r(&comV); err != nil {
		return err
	}
	if err := r(&indV); err != nil {
		return err
	}
	if err := r(&serial); err != nil {
		return err
	}
	snap.CityTime = int(cityTime)
	snap.SimCycle = int(simCycle)
	snap.PhaseCycle = int(phase)
	snap.TotalFunds = funds
	snap.CityTax = int(tax)
	snap.ResValve = int(resV)
	snap.ComValve = int(comV)
	snap.IndValve = int(indV)
	snap.MapSerial = serial

	snap.ResHist = make([]int16, city.HistoryLength)
	snap.ComHist = make([]int16, city.HistoryLength)
	snap.IndHist = make([]int16, city.HistoryLength)
	snap.CrimeHist = make([]int16, city.HistoryLength)
	snap.PollutionHist = make([]int16, city.HistoryLength)
	snap.MoneyHist = make([]int16, city.HistoryLength)
	snap.MiscHist = make([]int16, city.MiscHistoryLength)
	for _, hist := range [][]int16{
		snap.ResHist, snap.ComHist, snap.IndHist,
		snap.CrimeHist, snap.PollutionHist, snap.MoneyHist, snap.MiscHist,
	} {
		if err := r(hist); err != nil {
			return err
		}
	}

	c.Restore(&snap)
	return nil
}
