package global

import (
	"github.com/haierkeys/content-organizer-service/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT          string
	Name          string = "Content Organizer Service"
	WebClientName string = "Web"
)

func init() {
	filename := fileurl.GetExePath()
	ROOT = filename + "/"
}
