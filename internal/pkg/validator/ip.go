// Package validator 请求参数的轻量校验
package validator

import (
	"net"
	"strings"
)

// NormalizeIP 规范化 IP 地址，去除 IPv6 zone 与端口
func NormalizeIP(ip string) string {
	ip = strings.TrimSpace(ip)
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	if idx := strings.IndexByte(ip, '%'); idx != -1 {
		ip = ip[:idx]
	}
	return strings.Trim(ip, "[]")
}

// IPOrDefault 返回规范化后的合法 IP，否则返回 fallback
func IPOrDefault(ip, fallback string) string {
	normalized := NormalizeIP(ip)
	if parsed := net.ParseIP(normalized); parsed != nil {
		return parsed.String()
	}
	return fallback
}
