// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// SaveCoefMat saves a computed sym×sym coefficient tensor
func SaveCoefMat(dirout, fnkey, enctype, name string, c [][]float64, verbose bool) (err error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(c)
	if err != nil {
		return chk.Err("cannot encode coefficient %q\n%v", name, err)
	}
	return save_file(out_coef_path(dirout, fnkey, enctype, name), &buf, verbose)
}

// ReadCoefMat reads a previously saved sym×sym coefficient tensor
func ReadCoefMat(dirout, fnkey, enctype, name string) (c [][]float64, err error) {
	fil, err := os.Open(out_coef_path(dirout, fnkey, enctype, name))
	if err != nil {
		return
	}
	defer fil.Close()
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(&c)
	if err != nil {
		return nil, chk.Err("cannot decode coefficient %q\n%v", name, err)
	}
	return
}

// SaveCoefVec saves a computed sym-vector or time-array coefficient
func SaveCoefVec(dirout, fnkey, enctype, name string, c []float64, verbose bool) (err error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(c)
	if err != nil {
		return chk.Err("cannot encode coefficient %q\n%v", name, err)
	}
	return save_file(out_coef_path(dirout, fnkey, enctype, name), &buf, verbose)
}

// ReadCoefVec reads a previously saved sym-vector or time-array coefficient
func ReadCoefVec(dirout, fnkey, enctype, name string) (c []float64, err error) {
	fil, err := os.Open(out_coef_path(dirout, fnkey, enctype, name))
	if err != nil {
		return
	}
	defer fil.Close()
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(&c)
	if err != nil {
		return nil, chk.Err("cannot decode coefficient %q\n%v", name, err)
	}
	return
}

// SaveCorrector saves corrector states computed by an external unit-cell solver
func SaveCorrector(dirout, fnkey, enctype string, c *Corrector, verbose bool) (err error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(c)
	if err != nil {
		return chk.Err("cannot encode corrector %q\n%v", c.Name, err)
	}
	return save_file(out_cor_path(dirout, fnkey, enctype, c.Name), &buf, verbose)
}

// ReadCorrector reads corrector states from a file written by an external
// unit-cell solver
func ReadCorrector(dirout, fnkey, enctype, name string) (c *Corrector, err error) {
	fil, err := os.Open(out_cor_path(dirout, fnkey, enctype, name))
	if err != nil {
		return
	}
	defer fil.Close()
	dec := GetDecoder(fil, enctype)
	c = new(Corrector)
	err = dec.Decode(c)
	if err != nil {
		return nil, chk.Err("cannot decode corrector %q\n%v", name, err)
	}
	return
}

// FileEngine reads precomputed corrector states from files written by an
// external unit-cell solver. The driving perturbation modes are already baked
// into the stored states; the evaluator is used for its name only.
type FileEngine struct {
	Dir     string // directory with corrector files
	Fnkey   string // simulation file name key
	EncType string // encoder type
}

// Solve implements CorrectorEngine by loading the corrector from a file
func (o *FileEngine) Solve(dom *Domain, ev Evaluator, dep *Deps) (*Corrector, error) {
	return ReadCorrector(o.Dir, o.Fnkey, o.EncType, ev.Name())
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_coef_path(dir, fnkey, enctype, name string) string {
	return path.Join(dir, io.Sf("%s_cf_%s.%s", fnkey, name, enctype))
}

func out_cor_path(dir, fnkey, enctype, name string) string {
	return path.Join(dir, io.Sf("%s_co_%s.%s", fnkey, name, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() { err = fil.Close() }()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
