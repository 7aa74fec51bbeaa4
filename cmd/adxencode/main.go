// Command adxencode converts a WAV file to an ADX (Standard or AHX) file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/mewkiz/pkg/osutil"
	"github.com/mewkiz/pkg/pathutil"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/radx-go/radx"
)

func main() {
	start := pflag.Uint32P("start", "s", 0, "Loop start sample (defaults to song start)")
	end := pflag.Uint32P("end", "e", 0, "Loop end sample (defaults to song end)")
	noLoop := pflag.BoolP("no-loop", "n", false, "Don't loop the song")
	ahx := pflag.BoolP("ahx", "a", false, "Use ahx encoding (cannot loop)")
	force := pflag.BoolP("force", "f", false, "Force overwrite")
	help := pflag.BoolP("help", "h", false, "Print this help menu")
	pflag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	args := pflag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(0)
	}
	inputPath := args[0]
	outputPath := pathutil.TrimExt(inputPath) + ".adx"
	if len(args) > 1 {
		outputPath = args[1]
	}

	if !*force && osutil.Exists(outputPath) {
		barf("ADX file %q already present; use -f flag to force overwrite", outputPath)
	}

	in, err := os.Open(inputPath)
	if err != nil {
		barf("Could not open input file: %+v", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		barf("Could not open output file: %+v", err)
	}
	defer out.Close()

	if *ahx {
		fmt.Println("Reading Samples.")
		samples, sampleRate, err := readSamplesAhx(in)
		if err != nil {
			barf("Could not read samples from input: %+v", err)
		}
		if sampleRate != 22050 {
			barf("ahx encoding requires a sample rate of 22050.")
		}

		enc, err := radx.NewAhxEncoder(out)
		if err != nil {
			barf("Could not make encoder: %+v", err)
		}
		fmt.Println("Encoding data.")
		if err := enc.EncodeData(samples); err != nil {
			barf("Could not encode data: %+v", err)
		}
		if err := enc.Finish(); err != nil {
			barf("Could not finish writing adx file: %+v", err)
		}
		return
	}

	fmt.Println("Reading Samples.")
	samples, sampleRate, err := readSamples(in)
	if err != nil {
		barf("Could not read samples from input: %+v", err)
	}

	spec := radx.Spec{
		Channels:   2,
		SampleRate: sampleRate,
	}
	if !*noLoop {
		endSample := *end
		if !pflag.Lookup("end").Changed {
			endSample = uint32(len(samples))
		}
		spec.LoopInfo = &radx.LoopInfo{
			StartSample: *start,
			EndSample:   endSample,
		}
	}

	enc, err := radx.NewStandardEncoder(out, spec)
	if err != nil {
		barf("Could not make encoder: %+v", err)
	}
	fmt.Println("Encoding data.")
	if err := enc.EncodeData(samples); err != nil {
		barf("Could not encode data: %+v", err)
	}
	if err := enc.Finish(); err != nil {
		barf("Could not finish writing adx file: %+v", err)
	}
}

// readSamples decodes WAV PCM into stereo samples, upmixing mono input by
// duplicating it across both channels and pairing interleaved stereo input,
// duplicating a trailing unpaired sample.
func readSamples(r io.Reader) ([]radx.Sample, uint32, error) {
	values, channels, sampleRate, err := readWavValues(r)
	if err != nil {
		return nil, 0, err
	}

	switch channels {
	case 1:
		samples := make([]radx.Sample, len(values))
		for i, v := range values {
			samples[i] = radx.Sample{int16(v), int16(v)}
		}
		return samples, sampleRate, nil
	case 2:
		samples := make([]radx.Sample, 0, len(values)/2+1)
		for i := 0; i < len(values); i += 2 {
			first := int16(values[i])
			second := first
			if i+1 < len(values) {
				second = int16(values[i+1])
			}
			samples = append(samples, radx.Sample{first, second})
		}
		return samples, sampleRate, nil
	default:
		return nil, 0, errors.Errorf("unsupported channel count %d", channels)
	}
}

// readSamplesAhx decodes mono WAV PCM for AHX encoding.
func readSamplesAhx(r io.Reader) ([]int16, uint32, error) {
	values, channels, sampleRate, err := readWavValues(r)
	if err != nil {
		return nil, 0, err
	}
	if channels != 1 {
		barf("ahx encoding requires 1 channel (mono)")
	}
	samples := make([]int16, len(values))
	for i, v := range values {
		samples[i] = int16(v)
	}
	return samples, sampleRate, nil
}

func readWavValues(r io.Reader) ([]int, int, uint32, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, 0, errors.New("invalid WAV file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, 0, 0, errors.WithStack(err)
	}
	channels := int(dec.NumChans)
	sampleRate := dec.SampleRate

	const valuesPerRead = 4096
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  int(sampleRate),
		},
		Data:           make([]int, valuesPerRead),
		SourceBitDepth: 16,
	}

	var values []int
	for !dec.EOF() {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return nil, 0, 0, err
		}
		if n == 0 {
			break
		}
		values = append(values, buf.Data[:n]...)
	}
	return values, channels, sampleRate, nil
}

func barf(format string, args ...interface{}) {
	fmt.Printf("Error: "+format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Println("adxencode")
	fmt.Println("Usage: adxencode [options] INPUT [OUTPUT]")
	pflag.PrintDefaults()
}
