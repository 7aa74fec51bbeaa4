// Command adxdecode converts an ADX (Standard or AHX) file to a WAV file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/pflag"

	"github.com/radx-go/radx"
	"github.com/radx-go/radx/header"
)

func main() {
	loop := pflag.IntP("loop-count", "l", -1, "Loop N times")
	info := pflag.BoolP("info", "i", false, "Print adx header info")
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
	outputPath := inputPath + ".wav"
	if len(args) > 1 {
		outputPath = args[1]
	}

	f, err := os.Open(inputPath)
	if err != nil {
		barf("Could not open adx file: %+v", err)
	}
	defer f.Close()

	if *info {
		h, err := header.Read(f)
		if err != nil {
			barf("Could not read adx header: %+v", err)
		}
		fmt.Printf("%+v\n", h)
		os.Exit(0)
	}

	loopGiven := *loop >= 0
	dec, err := radx.Open(f, loopGiven)
	if err != nil {
		barf("Could not make adx reader: %+v", err)
	}

	fmt.Println("ADX info:")
	fmt.Println("    channels:", dec.Channels())
	fmt.Println("    Sample rate:", dec.SampleRate())
	loopInfo, hasLoop := dec.LoopInfo()
	if hasLoop {
		fmt.Println("    Loop start sample:", loopInfo.StartSample)
		fmt.Println("    Loop end sample:", loopInfo.EndSample)
	} else {
		fmt.Println("    Non-looping ADX")
	}

	out, err := os.Create(outputPath)
	if err != nil {
		barf("Could not open output file: %+v", err)
	}
	defer out.Close()

	channels := dec.Channels()
	enc := wav.NewEncoder(out, int(dec.SampleRate()), 16, channels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  int(dec.SampleRate()),
		},
		Data:           make([]int, channels),
		SourceBitDepth: 16,
	}

	writeSample := func() error {
		sample, err := dec.Next()
		if err != nil {
			return err
		}
		for ch, v := range sample {
			buf.Data[ch] = int(v)
		}
		return enc.Write(buf)
	}

	fmt.Println("Decoding and writing wav.")
	if loopGiven {
		if !hasLoop {
			barf("File is not a looping ADX. Do not use \"-l\".")
		}
		samplesToRead := loopInfo.StartSample + uint32(*loop)*(loopInfo.EndSample-loopInfo.StartSample)
		for i := uint32(0); i < samplesToRead; i++ {
			if err := writeSample(); err != nil {
				barf("Problem writing wav samples: %+v", err)
			}
		}
	} else {
		for {
			if err := writeSample(); err != nil {
				if err == io.EOF {
					break
				}
				barf("Problem writing wav samples: %+v", err)
			}
		}
	}

	if err := enc.Close(); err != nil {
		barf("Could not finalize writing wav file: %+v", err)
	}
}

func barf(format string, args ...interface{}) {
	fmt.Printf("Error: "+format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Println("adxdecode")
	fmt.Println("Usage: adxdecode [options] INPUT [OUTPUT]")
	pflag.PrintDefaults()
}
