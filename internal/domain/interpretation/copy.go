package interpretation

type levelCopy struct {
	label           string
	description     string
	recommendations []string
}

var copyFor = map[Level]levelCopy{
	HighRisk: {
		label:       "고위험군",
		description: "성인 ADHD 증상이 심각한 수준으로 나타났습니다. 일상생활과 직장생활에 상당한 영향을 미칠 수 있는 상태입니다.",
		recommendations: []string{
			"정신건강의학과 전문의 상담을 즉시 받으시기 바랍니다",
			"정확한 진단을 위한 종합적인 평가가 필요합니다",
			"약물치료 및 인지행동치료를 고려해볼 수 있습니다",
			"직장과 가정에서의 적응 전략에 대해 전문가와 상의하세요",
		},
	},
	Moderate: {
		label:       "중등도 위험군",
		description: "성인 ADHD 증상이 일상생활에 영향을 줄 수 있는 수준으로 나타났습니다.",
		recommendations: []string{
			"정신건강의학과 전문의 상담을 받아보시기 바랍니다",
			"정확한 진단을 위한 추가 검사가 필요할 수 있습니다",
			"일상생활 관리 방법과 스트레스 대처법에 대해 전문가와 상의하세요",
			"규칙적인 생활습관과 시간 관리 전략을 실천하세요",
		},
	},
	Mild: {
		label:       "경미한 위험군",
		description: "일부 성인 ADHD 증상이 관찰되지만 경미한 수준입니다.",
		recommendations: []string{
			"증상이 지속되거나 악화될 경우 전문의 상담을 고려하세요",
			"규칙적인 생활패턴과 충분한 수면을 유지하세요",
			"스트레스 관리와 건강한 생활습관을 실천하세요",
			"정기적으로 자가 모니터링을 해보세요",
		},
	},
	Normal: {
		label:       "정상 범위",
		description: "현재 성인 ADHD 증상이 거의 나타나지 않는 정상 범위입니다.",
		recommendations: []string{
			"현재 상태를 잘 유지하시기 바랍니다",
			"건강한 생활습관을 지속적으로 실천하세요",
			"스트레스 관리에 지속적으로 관심을 가지세요",
			"필요시 정기적인 정신건강 체크를 받아보세요",
		},
	},
}
