package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化（可重复调用）
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics()

	if HTTPRequestsTotal == nil || BooksAddedTotal == nil || StoreAnomaliesTotal == nil {
		t.Fatal("指标未初始化")
	}
}

// TestCounter 测试Counter递增
func TestCounter(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, BooksAddedTotal)
	IncCounter(BooksAddedTotal)
	IncCounter(BooksAddedTotal)

	if got := getCounterValue(t, BooksAddedTotal) - before; got != 2 {
		t.Errorf("Counter增量错误: expected=2, got=%f", got)
	}
}

// TestCounterVec 测试带标签的Counter
func TestCounterVec(t *testing.T) {
	InitMetrics()

	decode := map[string]string{"kind": "decode"}
	persist := map[string]string{"kind": "persist"}
	beforeDecode := getCounterVecValue(t, StoreAnomaliesTotal, decode)
	beforePersist := getCounterVecValue(t, StoreAnomaliesTotal, persist)

	IncCounterVec(StoreAnomaliesTotal, decode)
	IncCounterVec(StoreAnomaliesTotal, decode)
	IncCounterVec(StoreAnomaliesTotal, persist)

	if got := getCounterVecValue(t, StoreAnomaliesTotal, decode) - beforeDecode; got != 2 {
		t.Errorf("decode计数错误: expected=2, got=%f", got)
	}
	if got := getCounterVecValue(t, StoreAnomaliesTotal, persist) - beforePersist; got != 1 {
		t.Errorf("persist计数错误: expected=1, got=%f", got)
	}
}

// TestGauge 测试Gauge增减与设置
func TestGauge(t *testing.T) {
	InitMetrics()

	SetGauge(HTTPRequestsInProgress, 0)
	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)
	if got := getGaugeValue(t, HTTPRequestsInProgress); got != 1 {
		t.Errorf("Gauge值错误: expected=1, got=%f", got)
	}

	SetGauge(BooksInCatalog, 7)
	if got := getGaugeValue(t, BooksInCatalog); got != 7 {
		t.Errorf("Gauge设置后值错误: expected=7, got=%f", got)
	}
}

// TestNilSafe 未初始化的指标调用不应panic
func TestNilSafe(t *testing.T) {
	var counter prometheus.Counter
	var vec *prometheus.CounterVec
	var gauge prometheus.Gauge

	IncCounter(counter)
	IncCounterVec(vec, map[string]string{"kind": "decode"})
	SetGauge(gauge, 1)
	ObserveHistogramVec(nil, nil, 1)
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("读取Counter值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	var metric dto.Metric
	if err := counterVec.With(labels).Write(&metric); err != nil {
		t.Fatalf("读取CounterVec值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("读取Gauge值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}
