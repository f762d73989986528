package pipeline

import (
	"math"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	swim "github.com/su2xu1/apple-health-swimming-analysis"
)

type workoutParquetRow struct {
	Start        string  `parquet:"name=start, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	End          string  `parquet:"name=end, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	DurationMin  float64 `parquet:"name=duration_min, type=DOUBLE"`
	DistanceM    float64 `parquet:"name=distance_m, type=DOUBLE"`
	CaloriesKcal float64 `parquet:"name=calories_kcal, type=DOUBLE"`
	AvgHR        float64 `parquet:"name=avg_hr, type=DOUBLE"`
}

type setParquetRow struct {
	SetStartTime  string  `parquet:"name=set_start_time, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	TotalTimeSec  float64 `parquet:"name=total_time_sec, type=DOUBLE"`
	AvgSwolf      float64 `parquet:"name=avg_swolf, type=DOUBLE"`
	StrokeCombo   string  `parquet:"name=stroke_combo, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	LapCount      int64   `parquet:"name=lap_count, type=INT64"`
	DistanceM     float64 `parquet:"name=distance_m, type=DOUBLE"`
	PaceSecPer50M float64 `parquet:"name=pace_sec_per_50m, type=DOUBLE"`
}

func writeWorkoutParquet(path string, rows []swim.WorkoutRow) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	pw, err := writer.NewParquetWriter(fw, new(workoutParquetRow), 4)
	if err != nil {
		_ = fw.Close()
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, row := range rows {
		out := workoutParquetRow{
			Start:        row.Start.Format(outputTimeLayout),
			End:          row.End.Format(outputTimeLayout),
			DurationMin:  row.DurationMin,
			DistanceM:    valueOrNaN(row.DistanceM),
			CaloriesKcal: valueOrNaN(row.CaloriesKcal),
			AvgHR:        valueOrNaN(row.AvgHR),
		}
		if err := pw.Write(out); err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return err
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}

func writeSetParquet(path string, rows []swim.SetRow) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	pw, err := writer.NewParquetWriter(fw, new(setParquetRow), 4)
	if err != nil {
		_ = fw.Close()
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, row := range rows {
		out := setParquetRow{
			SetStartTime:  row.StartTime.Format(outputTimeLayout),
			TotalTimeSec:  floorTenth(row.TotalTimeSec),
			AvgSwolf:      floorOrNaN(row.AvgSwolf),
			StrokeCombo:   row.StrokeCombo,
			LapCount:      int64(row.LapCount),
			DistanceM:     row.DistanceM,
			PaceSecPer50M: floorOrNaN(row.PaceSec),
		}
		if err := pw.Write(out); err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return err
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}

// Absent values become NaN doubles in parquet output, never zero.
func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func floorOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return floorTenth(*v)
}
