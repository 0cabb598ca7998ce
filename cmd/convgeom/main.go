// convgeom prints the output geometry of sliding-window (convolution/pooling)
// operations for given input/window/stride/padding parameters.
//
// Examples:
//
//	convgeom -input=224,224 -window=3,3 -stride=2,2 -mode=same
//	convgeom -input=28 -window=5 -stride=1 -mode=valid -ranges
//	convgeom -sweep=1:16 -window=3 -stride=2 -mode=same
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/gomlx/convgeom"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagInput  = flag.String("input", "", "Comma-separated input size per spatial axis, e.g. \"224,224\".")
	flagWindow = flag.String("window", "", "Comma-separated window (kernel) size per spatial axis.")
	flagStride = flag.String("stride", "1", "Comma-separated stride per spatial axis. A single value is broadcast to all axes.")
	flagMode   = flag.String("mode", "same", fmt.Sprintf("Padding mode, one of %v.", convgeom.PaddingModeStrings()))
	flagRanges = flag.Bool("ranges", false, "Also print, per output coordinate of the first axis, the input range its window read (the gradient scatter range).")
	flagSweep  = flag.String("sweep", "", "Instead of -input, sweep a single-axis input size over an inclusive \"first:last\" range.")
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

func newPlainTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row == 1 {
				return headerRowStyle
			}
			if row%2 == 0 {
				s = oddRowStyle
			} else {
				s = evenRowStyle
			}
			s = s.Align(lipgloss.Right)
			return
		})
}

func parseInts(flagName, value string) []int {
	parts := strings.Split(value, ",")
	values := make([]int, len(parts))
	for i, part := range parts {
		parsed, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			klog.Fatalf("Invalid -%s=%q: %v", flagName, value, err)
		}
		values[i] = parsed
	}
	return values
}

func main() {
	flag.Parse()
	if *flagWindow == "" {
		klog.Errorf("Missing -window. See 'convgeom -help'.")
		os.Exit(1)
	}
	if (*flagInput == "") == (*flagSweep == "") {
		klog.Errorf("Exactly one of -input or -sweep must be given. See 'convgeom -help'.")
		os.Exit(1)
	}

	mode, err := convgeom.PaddingModeString(*flagMode)
	if err != nil {
		klog.Fatalf("Invalid -mode=%q, must be one of %v", *flagMode, convgeom.PaddingModeStrings())
	}
	windows := parseInts("window", *flagWindow)
	strides := parseInts("stride", *flagStride)
	if len(strides) == 1 && len(windows) > 1 {
		strides = append(strides, make([]int, len(windows)-1)...)
		for i := range strides {
			strides[i] = strides[0]
		}
	}
	if len(strides) != len(windows) {
		klog.Fatalf("-window has %d axes but -stride has %d", len(windows), len(strides))
	}

	if *flagSweep != "" {
		if len(windows) != 1 {
			klog.Fatalf("-sweep only supports a single axis, but -window has %d", len(windows))
		}
		sweep(windows[0], strides[0], mode)
		return
	}

	inputs := parseInts("input", *flagInput)
	if len(inputs) != len(windows) {
		klog.Fatalf("-input has %d axes but -window has %d", len(inputs), len(windows))
	}
	report(inputs, windows, strides, mode)
}

func report(inputs, windows, strides []int, mode convgeom.PaddingMode) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Output geometry (%s padding)", mode)))
	table := newPlainTable()
	table.Headers("axis", "input", "window", "stride", "output", "pad before", "pad after")
	for axis := range inputs {
		geometry, err := convgeom.WindowedOutputSize(inputs[axis], windows[axis], strides[axis], mode)
		if err != nil {
			klog.Fatalf("axis %d: %v", axis, err)
		}
		table.Row(
			strconv.Itoa(axis), strconv.Itoa(inputs[axis]),
			strconv.Itoa(windows[axis]), strconv.Itoa(strides[axis]),
			strconv.Itoa(geometry.OutputSize),
			strconv.Itoa(geometry.PadBefore), strconv.Itoa(geometry.PadAfter))
	}
	fmt.Println(table.Render())

	if *flagRanges {
		geometry := must.M1(convgeom.WindowedOutputSize(inputs[0], windows[0], strides[0], mode))
		fmt.Println(titleStyle.Render("Gradient scatter ranges (axis 0)"))
		table = newPlainTable()
		table.Headers("output index", "input start", "size")
		for outputIndex := 0; outputIndex < geometry.OutputSize; outputIndex++ {
			start, size := must.M2(convgeom.BroadcastRange(
				outputIndex, inputs[0], windows[0], strides[0], geometry.PadBefore))
			table.Row(strconv.Itoa(outputIndex), strconv.Itoa(start), strconv.Itoa(size))
		}
		fmt.Println(table.Render())
	}
}

func sweep(window, stride int, mode convgeom.PaddingMode) {
	parts := strings.SplitN(*flagSweep, ":", 2)
	if len(parts) != 2 {
		klog.Fatalf("Invalid -sweep=%q, expected \"first:last\"", *flagSweep)
	}
	first := parseInts("sweep", parts[0])[0]
	last := parseInts("sweep", parts[1])[0]
	if first < 0 || last < first {
		klog.Fatalf("Invalid -sweep=%q, need 0 <= first <= last", *flagSweep)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Output geometry sweep, window=%d stride=%d (%s padding)", window, stride, mode)))
	table := newPlainTable()
	table.Headers("input", "output", "pad before", "pad after")
	for inputSize := first; inputSize <= last; inputSize++ {
		geometry, err := convgeom.WindowedOutputSize(inputSize, window, stride, mode)
		if err != nil {
			table.Row(strconv.Itoa(inputSize), "-", "-", "-")
			continue
		}
		table.Row(
			strconv.Itoa(inputSize), strconv.Itoa(geometry.OutputSize),
			strconv.Itoa(geometry.PadBefore), strconv.Itoa(geometry.PadAfter))
	}
	fmt.Println(table.Render())
}
